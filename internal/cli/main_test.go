//go:build integration

package cli

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/packlist-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
