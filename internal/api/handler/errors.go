package handler

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/mcpclient"
	"github.com/vfg2006/mcp-dashboard/pkg/apiErrors"
)

func classifyUpstream(err error) (string, any) {
	var statusErr *mcpclient.StatusError

	switch {
	case errors.As(err, &statusErr):
		return apiErrors.ErrExternalService, map[string]any{"upstream_status": statusErr.Code}
	case errors.Is(err, mcpclient.ErrTimeout):
		return apiErrors.ErrTimeout, nil
	case errors.Is(err, mcpclient.ErrTransport):
		return apiErrors.ErrCommunication, nil
	case errors.Is(err, mcpclient.ErrDecode), errors.Is(err, mcp.ErrUnexpectedShape):
		return apiErrors.ErrExternalService, map[string]any{"reason": err.Error()}
	default:
		return apiErrors.ErrInternalServer, nil
	}
}
