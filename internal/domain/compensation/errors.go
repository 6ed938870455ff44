package compensation

import "errors"

var (
	ErrSchemeNotFound   = errors.New("compensation scheme not found")
	ErrSchemeNameExists = errors.New("compensation scheme name already exists")
)
