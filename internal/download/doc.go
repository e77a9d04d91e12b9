// Package download streams a resolved server jar to disk and orchestrates
// a full server setup.
//
// # Downloader
//
// Downloader performs one GET and writes the body to the destination file
// chunk by chunk. Progress is reported on a single ordered channel of
// Event values:
//
//	Length(total)    exactly once, first; total is -1 when unknown
//	Progress(n)      once per chunk, n strictly increasing
//	Done(n)          file complete and closed
//	Failed(err)      *StatusError, *TransferError or a file error
//
// The channel is closed after Done or Failed. A consumer that sees the
// channel close without Done must treat the download as failed; Drain does
// this.
//
//	events := download.NewDownloader(client, logger).Start(ctx, url, "server.jar")
//	for ev := range events {
//	    switch ev.Kind {
//	    case download.EventLength:
//	        bar.SetTotal(ev.Total)
//	    case download.EventProgress:
//	        bar.Set(ev.Written)
//	    }
//	}
//
// # Manager
//
// The Manager coordinates the entire setup:
//
//  1. Write eula.txt (optional)
//  2. Convert the server icon (optional)
//  3. Resolve the release with the named provider
//  4. Download the jar while a Sink renders progress
//
// Lifecycle messages are reported via a callback that receives Notice:
//
//	manager := download.NewManager(settings, func(n download.Notice) {
//	    fmt.Println(n.Text)
//	})
//	err := manager.Run(ctx, "paper", provider.Request{Version: "1.21"}, sink)
package download
