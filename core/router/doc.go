// Package router is the dispatch layer: it resolves request paths to mounted
// servlet contexts and invokes the servlet mapped to the context-relative URI.
//
//	r := router.New()
//	shop := servlet.NewContext("/shop")
//	shop.HandleFunc("/cart", cartServlet)
//	r.Mount(shop)
//
//	ctx, uri := r.Resolve("/shop/cart") // shop context, "/cart"
//
// A path is resolved by its first segment; paths whose first segment names no
// mounted context belong to the root context. Requests for URIs with no mapped
// servlet are answered by the fallback servlet, which reports 404 unless
// replaced with WithFallback.
package router
