package download

import (
	"context"
	"fmt"

	"github.com/handiism/bings-everyday-wallpaper/internal/bing"
	"github.com/handiism/bings-everyday-wallpaper/internal/config"
	"github.com/handiism/bings-everyday-wallpaper/internal/http"
	ioutils "github.com/handiism/bings-everyday-wallpaper/internal/io"
	"github.com/handiism/bings-everyday-wallpaper/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result describes a completed fetch.
type Result struct {
	// ImageURL is the absolute URL the payload was fetched from.
	ImageURL string

	// Title is the archive's title for the image, if any.
	Title string

	// Size is the number of bytes written.
	Size int
}

// Fetcher downloads today's image to a destination.
type Fetcher struct {
	settings     *config.Settings
	httpClient   *http.Client
	imageService *ioutils.ImageService

	onProgress func(ProgressEvent)
}

// NewFetcher creates a new Fetcher.
func NewFetcher(settings *config.Settings, onProgress func(ProgressEvent)) *Fetcher {
	return &Fetcher{
		settings:     settings,
		httpClient:   http.NewClient(settings.RequestTimeout, settings.UserAgent),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// Fetch downloads today's image and writes it to dest.Path.
//
// The image request is only issued once the metadata document has yielded a
// usable URL.
func (f *Fetcher) Fetch(ctx context.Context, dest *model.Destination) (*Result, error) {
	f.progress(ProgressEvent{Message: fmt.Sprintf("Fetching metadata: %s", f.settings.MetadataURL), Level: LevelVerbose})

	body, err := f.httpClient.Get(ctx, f.settings.MetadataURL)
	if err != nil {
		return nil, model.NewNetworkError("fetch metadata", f.settings.MetadataURL, err)
	}

	entry, err := bing.ParseArchive(body)
	if err != nil {
		return nil, err
	}

	imageURL, err := bing.ImageURL(f.settings.ImageHost, entry.URL)
	if err != nil {
		return nil, err
	}

	if entry.Title != "" {
		f.progress(ProgressEvent{Message: fmt.Sprintf("Today's image: %s", entry.Title), Level: LevelInfo})
	}
	f.progress(ProgressEvent{Message: fmt.Sprintf("Fetching image: %s", imageURL), Level: LevelVerbose})

	data, err := f.httpClient.Download(ctx, imageURL, f.reportBytes)
	if err != nil {
		return nil, model.NewNetworkError("fetch image", imageURL, err)
	}

	if info, err := f.imageService.Inspect(data); err != nil {
		f.progress(ProgressEvent{Message: fmt.Sprintf("Payload is not a recognized image (%v), saving it anyway", err), Level: LevelWarning})
	} else {
		f.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded %s, %d bytes", info, len(data)), Level: LevelVerbose})
	}

	if err := ioutils.WriteFile(ctx, dest.Path, data); err != nil {
		return nil, err
	}

	f.progress(ProgressEvent{Message: fmt.Sprintf("Saved: %s", dest.Path), Level: LevelSuccess})
	return &Result{ImageURL: imageURL, Title: string(entry.Title), Size: len(data)}, nil
}

func (f *Fetcher) reportBytes(read, total int64) {
	if total <= 0 || read != total {
		return
	}
	f.progress(ProgressEvent{Message: fmt.Sprintf("Received %d bytes", read), Level: LevelVerbose})
}

func (f *Fetcher) progress(event ProgressEvent) {
	if f.onProgress != nil {
		f.onProgress(event)
	}
}
