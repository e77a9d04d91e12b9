package dto

// PaperProject is the project document.
//
//	https://api.papermc.io/v2/projects/paper
type PaperProject struct {
	Versions []string `json:"versions"`
}

// PaperVersion lists the builds of one game version, oldest first.
//
//	https://api.papermc.io/v2/projects/paper/versions/1.21
type PaperVersion struct {
	Builds []int `json:"builds"`
}

// PaperBuild is a single build document.
//
//	https://api.papermc.io/v2/projects/paper/versions/1.21/builds/101
type PaperBuild struct {
	Downloads PaperDownloads `json:"downloads"`
}

// PaperDownloads lists the build's files; the server jar is "application".
type PaperDownloads struct {
	Application PaperDownload `json:"application"`
}

// PaperDownload names one downloadable file.
type PaperDownload struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
}
