// Package model defines the core data structures used throughout
// bings-everyday-wallpaper.
//
// # Destination
//
// Destination is the resolved location the image of the day is written to:
//
//	dest := &model.Destination{Raw: "~/Pictures", Path: "~/Pictures/bings-everyday-wallpaper.jpg", State: model.StateDirectory}
//	fmt.Println(dest.Path)  // Where the image will be written
//	fmt.Println(dest.State) // What was found on disk at resolution time
//
// # Errors
//
// Every failure surfaced by the core is an *Error carrying a Kind:
//
//	if model.IsKind(err, model.KindParse) {
//	    // the metadata document did not have images[0].url
//	}
//
// Kinds: KindFilesystem, KindNetwork, KindParse.
package model
