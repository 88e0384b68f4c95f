/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/simplebooks/test/api"
)

// expectUnauthorized asserts that err is the service rejecting the credential,
// not a transport failure.
func expectUnauthorized(err error) {
	Expect(err).To(HaveOccurred())
	Expect(api.IsTransportError(err)).To(BeFalse(), "Expected an HTTP response, got a transport failure: %v", err)

	status, ok := api.StatusCode(err)
	Expect(ok).To(BeTrue())
	Expect(status).To(Equal(http.StatusUnauthorized))
}

var _ = Describe("Security and Authentication", func() {
	Context("When accessing orders with different authentication states", func() {
		Describe("Given invalid authentication", func() {
			It("should reject requests with invalid tokens", func() {
				_, err := client.WithAuthToken(config.InvalidAuthToken).ListOrders(ctx)
				expectUnauthorized(err)
			})

			It("should reject requests with missing authentication", func() {
				_, err := client.WithAuthToken("").ListOrders(ctx)
				expectUnauthorized(err)
			})

			It("should reject order creation with invalid tokens", func() {
				_, err := client.WithAuthToken(config.InvalidAuthToken).CreateOrder(ctx, api.NewOrderPayload().Build())
				expectUnauthorized(err)
			})
		})

		Describe("Given valid authentication", func() {
			It("should accept the same request", func() {
				_, err := client.ListOrders(ctx)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})
})
