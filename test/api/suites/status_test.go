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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service Status", func() {
	Context("When checking the service status", func() {
		Describe("Given the service is running", func() {
			It("should report an OK status", func() {
				status, err := client.GetStatus(ctx)
				Expect(err).NotTo(HaveOccurred(), "Should successfully retrieve status (HTTP 200)")
				Expect(status.Status).To(Equal("OK"))
			})

			It("should report the same status on repeated calls", func() {
				first, err := client.GetStatus(ctx)
				Expect(err).NotTo(HaveOccurred())

				second, err := client.GetStatus(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(second).To(Equal(first))
			})
		})
	})
})
