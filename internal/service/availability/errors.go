package availability

import "errors"

// ErrInternal возвращается при ошибках хранилища
var ErrInternal = errors.New("availability: internal error")
