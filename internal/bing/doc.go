// Package bing understands the image archive metadata served by the
// search engine homepage.
//
// The archive endpoint answers with a JSON document whose first image entry
// carries a relative URL:
//
//	{"images":[{"url":"/th?id=OHR.Example_1920x1080.jpg&rf=...","title":"..."}]}
//
// # Parsing
//
//	entry, err := bing.ParseArchive(body)
//	if err != nil {
//	    // *model.Error of kind KindParse
//	}
//
// # Absolute URL
//
//	imageURL, err := bing.ImageURL("https://www.bing.com", entry.URL)
//	// imageURL = "https://www.bing.com/th?id=OHR.Example_1920x1080.jpg&rf=..."
package bing
