// Package catalog provides the topic registry: an immutable, ordered mapping from
// stable topic keys to opaque markup payloads.
//
// A registry is constructed once, either from an author-ordered list of units or by
// merging several sources, and then only read:
//
//	reg, err := catalog.New([]catalog.Unit{
//		{Key: "cache-prestashop-smarty-apcu", Payload: "<div>...</div>"},
//		{Key: "sql-avanzado", Payload: "<div>...</div>"},
//	})
//	if err != nil {
//		log.Fatal(err) // duplicate or empty key: refuse to start
//	}
//
//	payload, err := reg.Resolve("sql-avanzado")
//	if catalog.IsNotFound(err) {
//		// render a fallback page
//	}
//
// Keys compare with exact, case-sensitive equality. Keys() and Entries() always
// follow registration order.
package catalog
