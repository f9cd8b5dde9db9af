package http

import (
	"github.com/pkg/errors"

	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
)

// errNoRoute — ответ для путей, которых нет в роутере.
var errNoRoute = errors.Wrap(serr.ErrNotFound, "route")

// errMethodNotAllowed — путь известен, метод нет.
var errMethodNotAllowed = errors.Wrap(serr.ErrMethodNotAllowed, "route")
