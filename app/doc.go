// Package app is the composition root. It loads Config from the environment,
// builds the session store, router, request processor, and listener, and runs
// the session sweeper and the server under one errgroup.
//
//	shop := servlet.NewContext("/shop")
//	shop.HandleFunc("/cart", cart)
//
//	a, err := app.NewApp(app.WithContexts(shop))
//	if err != nil {
//		return err
//	}
//	return a.Run(ctx)
package app
