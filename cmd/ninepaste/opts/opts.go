package opts

import (
	"github.com/walteh/ninepaste/cmd/ninepaste/userlog"
	"github.com/walteh/ninepaste/pkg/config"
	"github.com/walteh/ninepaste/pkg/ipc"
	"github.com/walteh/ninepaste/pkg/recipe"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	ConfigPath string
	Registry   *recipe.Registry
	Client     *ipc.Client
	UserLogger *userlog.UserLogger
}
