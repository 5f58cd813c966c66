package dispatch

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnox-io/agnox/pkg/config"
)

func validRequest() Request {
	return Request{
		TaskID:      "t1",
		Image:       "agnox/runner:1",
		Command:     "npx playwright test",
		Environment: "staging",
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(r *Request) {},
		},
		{
			name:    "missing task id",
			mutate:  func(r *Request) { r.TaskID = "" },
			wantErr: "taskId",
		},
		{
			name:    "missing image",
			mutate:  func(r *Request) { r.Image = "" },
			wantErr: "image",
		},
		{
			name:    "bad environment",
			mutate:  func(r *Request) { r.Environment = "production" },
			wantErr: "environment",
		},
		{
			name:    "retry attempts too high",
			mutate:  func(r *Request) { r.RetryAttempts = 6 },
			wantErr: "retryAttempts",
		},
		{
			name:    "negative retry attempts",
			mutate:  func(r *Request) { r.RetryAttempts = -1 },
			wantErr: "retryAttempts",
		},
		{
			name:    "bad env var key",
			mutate:  func(r *Request) { r.EnvVars = map[string]string{"BAD-KEY": "x"} },
			wantErr: "key",
		},
		{
			name: "reserved env var key passes validation",
			// Dropped during merge instead of rejected, so callers with a
			// stale reporter config don't hard-fail.
			mutate: func(r *Request) { r.EnvVars = map[string]string{"PLATFORM_TOKEN": "x"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func newTestPipeline(cfg config.DispatchConfig) *Pipeline {
	return NewPipeline(nil, nil, nil, nil, nil, cfg, slog.Default())
}

func TestResolveEnvVarsRequestOnly(t *testing.T) {
	p := newTestPipeline(config.DispatchConfig{})
	req := validRequest()
	req.EnvVars = map[string]string{"API_URL": "https://api"}

	merged, err := p.resolveEnvVars(context.Background(), "org-1", req)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"API_URL": "https://api"}, merged)
}

func TestResolveEnvVarsDropsReservedPrefix(t *testing.T) {
	p := newTestPipeline(config.DispatchConfig{})
	req := validRequest()
	req.EnvVars = map[string]string{
		"API_URL":        "https://api",
		"PLATFORM_TOKEN": "stolen",
	}

	merged, err := p.resolveEnvVars(context.Background(), "org-1", req)
	require.NoError(t, err)
	assert.Contains(t, merged, "API_URL")
	assert.NotContains(t, merged, "PLATFORM_TOKEN")
}

func TestResolveEnvVarsServerInjection(t *testing.T) {
	t.Setenv("PLATFORM_LICENSE_KEY", "lic-123")
	t.Setenv("UNLISTED_VAR", "nope")

	p := newTestPipeline(config.DispatchConfig{
		InjectEnvVars: []string{"PLATFORM_LICENSE_KEY", "NOT_SET_ANYWHERE"},
	})

	merged, err := p.resolveEnvVars(context.Background(), "org-1", validRequest())
	require.NoError(t, err)
	assert.Equal(t, "lic-123", merged["PLATFORM_LICENSE_KEY"])
	assert.NotContains(t, merged, "NOT_SET_ANYWHERE")
	assert.NotContains(t, merged, "UNLISTED_VAR")
}

func TestResolveEnvVarsEmptyIsNil(t *testing.T) {
	p := newTestPipeline(config.DispatchConfig{})

	merged, err := p.resolveEnvVars(context.Background(), "org-1", validRequest())
	require.NoError(t, err)
	assert.Nil(t, merged)
}
