package court

import (
	"fmt"

	"github.com/m04kA/SMC-TennisClubService/internal/infra/storage/crud"
)

// ErrCourtNotFound возвращается, когда корт не найден, удален или удалено его покрытие
var ErrCourtNotFound = fmt.Errorf("court.repository: court not found: %w", crud.ErrNotFound)
