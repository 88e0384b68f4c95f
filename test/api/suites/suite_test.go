package suites

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/simplebooks/test/api"
)

var (
	client *api.APIClient
	ctx    context.Context
	config *api.TestConfig
)

var _ = BeforeEach(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	client, err = api.NewAPIClientWithConfig(config)
	Expect(err).NotTo(HaveOccurred())

	ctx = context.Background()
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Test Suites")
}
