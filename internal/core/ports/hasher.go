package ports

// ArtifactHasher computes content digests of built artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ArtifactHasher interface {
	// DigestFile computes the content digest of the file at path.
	DigestFile(path string) (string, error)
}
