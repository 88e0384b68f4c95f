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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"
)

// CreateOrderWithCleanup creates an order and schedules automatic cleanup.
func CreateOrderWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload OrderRequest) (*OrderCreated, string) {
	created, err := client.CreateOrder(ctx, payload)
	Expect(err).NotTo(HaveOccurred(), "Should create order for customer %q (HTTP 201)", payload.CustomerName)
	Expect(created.OrderID).NotTo(BeNil(), "Created order should carry an orderId")

	orderID := *created.OrderID

	GinkgoWriter.Printf("Created order with ID: %s\n", orderID)

	ScheduleOrderCleanup(client, ctx, config, orderID)

	return created, orderID
}

// ScheduleOrderCleanup deletes the order once the test finishes, whether it
// passed or not.  Deletion failures are logged, never failed on.
func ScheduleOrderCleanup(client *APIClient, ctx context.Context, config *TestConfig, orderID string) {
	if !config.CleanupOrders {
		return
	}

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up order: %s\n", orderID)

		if err := client.DeleteOrder(ctx, orderID); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete order %s: %v\n", orderID, err)
		}
	})
}

// MissingBookTitles returns, sorted, the expected titles absent from books.
func MissingBookTitles(books []Book, expected ...string) []string {
	names := make([]string, len(books))

	for i := range books {
		names[i] = books[i].Name
	}

	missing := set.New[string](expected...).Difference(set.New[string](names...))

	out := []string{}

	for title := range missing.All() {
		out = append(out, title)
	}

	slices.Sort(out)

	return out
}

// VerifyBookTitles verifies that every expected title is present in the catalog.
func VerifyBookTitles(books []Book, expected ...string) {
	Expect(MissingBookTitles(books, expected...)).To(BeEmpty(), "Expected every title to be present in the catalog")
}

// OrderUpdateFixture represents an order setup for update testing.
type OrderUpdateFixture struct {
	OrderID              string
	OriginalCustomerName string
}

// CreateOrderUpdateFixture creates an order specifically for update testing.
func CreateOrderUpdateFixture(client *APIClient, ctx context.Context, config *TestConfig, customerName string) *OrderUpdateFixture {
	_, orderID := CreateOrderWithCleanup(client, ctx, config,
		NewOrderPayload().
			WithCustomerName(customerName).
			Build())

	return &OrderUpdateFixture{
		OrderID:              orderID,
		OriginalCustomerName: customerName,
	}
}

// CreateUpdatePayload creates an order patch renaming the customer.
func (f *OrderUpdateFixture) CreateUpdatePayload(customerName string) OrderUpdate {
	return OrderUpdate{
		CustomerName: customerName,
	}
}

// VerifyCustomerName verifies an order read back from the service.
func VerifyCustomerName(order *Order, orderID, expected string) {
	Expect(order).NotTo(BeNil())
	Expect(order.ID).To(Equal(orderID))
	Expect(order.CustomerName).To(Equal(expected))
}
