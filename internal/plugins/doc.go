// Package plugins looks up server plugins in the Modrinth catalog.
//
//	client := plugins.NewClient(httpClient, plugins.DefaultBaseURL)
//	p, err := client.Project(ctx, "luckperms")
//	hits, err := client.Search(ctx, "worldedit", 10)
package plugins
