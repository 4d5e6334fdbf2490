package controllers_fx

import (
	"go.uber.org/fx"

	"vpgquote/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewConfiguratorController),
	fx.Provide(controllers.NewAdminController))
