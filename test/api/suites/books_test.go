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

	"k8s.io/utils/ptr"
)

var _ = Describe("Books Catalog", func() {
	Context("When listing books", func() {
		Describe("Given no filters", func() {
			It("should return every known title", func() {
				books, err := client.ListBooks(ctx, nil)
				Expect(err).NotTo(HaveOccurred(), "Should successfully list books (HTTP 200)")

				api.VerifyBookTitles(books,
					"The Russian",
					"Just as I Am",
					"The Vanishing Half",
					"The Midnight Library",
					"Untamed",
					"Viscount Who Loved Me",
				)

				GinkgoWriter.Printf("Found %d books\n", len(books))
			})
		})

		Describe("Given limit and type filters", func() {
			It("should return a single fiction book", func() {
				books, err := client.ListBooks(ctx, &api.BookFilter{
					Limit: ptr.To(1),
					Type:  ptr.To(api.BookTypeFiction),
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(books).To(HaveLen(1), "limit=1 should return exactly one book")
				Expect(books[0].Type).To(Equal(api.BookTypeFiction))
			})

			It("should return exactly one book for limit=1 without a type", func() {
				books, err := client.ListBooks(ctx, &api.BookFilter{
					Limit: ptr.To(1),
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(books).To(HaveLen(1))
			})
		})
	})

	Context("When retrieving a specific book", func() {
		Describe("Given the book identifier is in the path", func() {
			It("should return the book with that identifier", func() {
				book, err := client.GetBook(ctx, 5)
				Expect(err).NotTo(HaveOccurred())
				Expect(book.ID).To(Equal(5))
			})

			It("should return the same book on repeated calls", func() {
				first, err := client.GetBook(ctx, 5)
				Expect(err).NotTo(HaveOccurred())

				second, err := client.GetBook(ctx, 5)
				Expect(err).NotTo(HaveOccurred())

				Expect(second.ID).To(Equal(first.ID))
				Expect(second.Name).To(Equal(first.Name))
			})
		})
	})
})
