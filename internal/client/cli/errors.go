package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/socialhub/internal/common"
)

var (
	errUnknownCommand  = errors.New("unknown command")
	errAlreadyLoggedIn = errors.New("already logged in, use 'logout' first")
	errLoginRequired   = fmt.Errorf("%w: use 'login' or 'signup' first", common.ErrNotAuthenticated)
	errRequired        = errors.New("value is required")
	errUsage           = errors.New("usage")
)
