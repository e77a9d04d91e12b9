// Package provider resolves a server release request against a provider's
// remote manifest.
//
// Three variants implement the same Resolver interface:
//
//   - Vanilla: Mojang's version manifest. One manifest, then a per-version
//     detail document holding the server jar URL.
//   - Paper: PaperMC's project API. Project, then version, then build
//     documents; the jar URL is composed from the build's file name.
//   - Fabric: Fabric meta. One document with game, loader and installer
//     lists; the jar URL is composed from the three resolved values.
//
// # Basic Usage
//
//	client := http.NewClient(http.DefaultOptions())
//	r, err := provider.New("paper", client)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rel, err := r.Resolve(ctx, provider.Request{Version: "1.21"})
//	if err != nil {
//	    var nf *provider.NotFoundError
//	    if errors.As(err, &nf) {
//	        fmt.Println(nf.Latest)
//	    }
//	}
//
// # Latest and validation
//
// Every empty field of a Request means "latest" on that axis. A requested
// identifier that sorts after the axis's latest value, or that the manifest
// does not list, fails with a *NotFoundError carrying both values. How
// identifiers are ordered is chosen with WithOrdering.
//
// Manifests are fetched fresh on every call and never cached.
package provider
