package videos

import "github.com/ytinfo/backend/internal/models"

var downloadInstructions = []string{
	"Due to YouTube's terms of service, direct downloading through web APIs is restricted.",
	"You can use these alternatives:",
	`1. Browser extensions like "Video Downloader Professional"`,
	"2. Desktop applications like 4K Video Downloader",
	`3. Online services (search "YouTube downloader")`,
	"4. After downloading, upload the file to your Google Drive manually",
}

// DownloadInstructions returns the instructions shown with a successful lookup.
func DownloadInstructions() []string {
	return append([]string(nil), downloadInstructions...)
}

// FallbackInstructions returns the instructions shown when metadata could not
// be fetched. The last line always points at the video itself.
func FallbackInstructions(videoID string) []string {
	ref := Reference{id: videoID}
	return []string{
		"You can still download this video using:",
		"1. Browser extensions",
		"2. Desktop applications",
		"3. Online YouTube downloader services",
		"Video URL: " + ref.WatchURL(),
	}
}

// PlaceholderFormat is the single static format attached to every result.
func PlaceholderFormat(ref Reference) models.FormatDescriptor {
	return models.FormatDescriptor{
		Quality:     "Best Quality",
		Container:   "MP4",
		HasVideo:    true,
		HasAudio:    true,
		URL:         ref.WatchURL(),
		Note:        "Use browser extensions or third-party tools",
		Placeholder: true,
	}
}
