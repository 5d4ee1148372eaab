package ports

// InstallDetector decides whether a request belongs to the installer.
//
//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type InstallDetector interface {
	IsInstallRequest(url string) bool
}
