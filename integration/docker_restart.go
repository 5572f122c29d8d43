//go:build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
)

// restartAPIContainer bounces the API so reads after it must come from Postgres.
func restartAPIContainer(t *testing.T, ctx context.Context) {
	t.Helper()

	svc := getenv("E2E_API_SERVICE", "api")
	cmd := exec.CommandContext(ctx, "docker", "compose", "restart", svc)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("docker compose restart %s failed: %v\n%s", svc, err, string(out))
	}
}
