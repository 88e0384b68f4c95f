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

	"github.com/unikorn-cloud/simplebooks/test/api"
)

var _ = Describe("Order Lifecycle", func() {
	Context("When listing orders", func() {
		Describe("Given a valid token", func() {
			It("should return the caller's orders", func() {
				orders, err := client.ListOrders(ctx)
				Expect(err).NotTo(HaveOccurred(), "Should successfully list orders (HTTP 200)")

				GinkgoWriter.Printf("Found %d orders\n", len(orders))
			})
		})
	})

	Context("When creating an order", func() {
		Describe("Given a valid order payload", func() {
			It("should successfully create the order", func() {
				created, err := client.CreateOrder(ctx,
					api.NewOrderPayload().
						WithBookID("1").
						WithCustomerName("Testcho Testov").
						Build())
				Expect(err).NotTo(HaveOccurred(), "Should successfully create the order (HTTP 201)")
				Expect(created.Created).To(BeTrue())
				Expect(created.OrderID).NotTo(BeNil())

				api.ScheduleOrderCleanup(client, ctx, config, *created.OrderID)
			})

			It("should assign a new identifier to every order", func() {
				payload := api.NewOrderPayload().
					WithCustomerName("Testcho Testov").
					Build()

				_, firstID := api.CreateOrderWithCleanup(client, ctx, config, payload)
				_, secondID := api.CreateOrderWithCleanup(client, ctx, config, payload)

				Expect(secondID).NotTo(Equal(firstID), "Identical payloads should create distinct orders")
			})
		})
	})

	Context("When updating an order", func() {
		var fixture *api.OrderUpdateFixture

		BeforeEach(func() {
			fixture = api.CreateOrderUpdateFixture(client, ctx, config, "Old Oldman")
		})

		Describe("Given a new customer name", func() {
			It("should apply the update and return it on the next read", func() {
				err := client.UpdateOrder(ctx, fixture.OrderID, fixture.CreateUpdatePayload("New Newman"))
				Expect(err).NotTo(HaveOccurred(), "Should successfully update the order (HTTP 204)")

				order, err := client.GetOrder(ctx, fixture.OrderID)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyCustomerName(order, fixture.OrderID, "New Newman")
			})
		})
	})
})
