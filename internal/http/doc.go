// Package http provides the HTTP client used to talk to the image archive.
//
// The Client in this package handles:
//   - User-Agent headers
//   - A bounded per-request timeout
//   - Rejecting non-success statuses
//   - Progress tracking while a body is read
//
// # Basic Usage
//
//	client := http.NewClient(30*time.Second, "bings-everyday-wallpaper")
//
//	// Fetch the metadata document
//	body, err := client.Get(ctx, "https://cn.bing.com/HPImageArchive.aspx?format=js&n=1")
//
//	// Fetch the image with a progress callback
//	data, err := client.Download(ctx, imageURL, func(read, total int64) {
//	    fmt.Printf("%d / %d bytes\n", read, total)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   &buf,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* log */ },
//	}
package http
