// Package bundlefx groups the HTTP-facing middleware modules.
package bundlefx

import (
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-worker/pkg/middleware/metrics"
	"go.uber.org/fx"
)

var Module = fx.Options(
	auth.Module,
	logger.Module,
	metrics.Module,
)
