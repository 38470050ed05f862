package types

// Version is the condaci release version
const Version = "0.1.0"

// Secret is an opaque credential value. Logged secrets are redacted by the
// masq filter installed in the logger configuration, keyed on this type.
type Secret string

// Environment variables reported by the CI platform. All three are expected
// to be present on a build agent; a missing one is a fatal error.
const (
	EnvPullRequest = "TRAVIS_PULL_REQUEST"
	EnvBranch      = "TRAVIS_BRANCH"
	EnvTag         = "TRAVIS_TAG"
)

// ReleaseChannel is the upload channel used for tagged release builds
const ReleaseChannel = "main"

// KeyPlaceholder replaces the binstar key in any error surfaced from a
// failed upload, so logs never contain the real credential.
const KeyPlaceholder = "BINSTAR_KEY"
