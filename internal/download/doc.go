// Package download fetches the image of the day and writes it to disk.
//
// # Fetcher
//
// The Fetcher runs the two step protocol:
//
//  1. GET the metadata document
//  2. Extract images[0].url and join it onto the image host
//  3. GET the image bytes
//  4. Atomically replace the destination with the bytes
//
// # Basic Usage
//
//	fetcher := download.NewFetcher(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := fetcher.Fetch(ctx, dest)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Failures
//
// There are no retries. Every failure aborts the fetch and is returned as a
// *model.Error: KindNetwork for either request, KindParse for the metadata
// document and KindFilesystem for the final write.
package download
