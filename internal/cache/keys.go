package cache

import "strings"

const (
	GlobalKeyPrefix = "eldersafe"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ScenariosKey is the cache key for the generated scenario pool of one
// kind within a client scope. The scope outlives any single session, so
// repeat starts for the same kind find the pool again.
func ScenariosKey(scope, kind string) string {
	return GenerateCacheKey("client", "scenarios", scope, kind)
}

// ResultsKey is the per-session storage key for a completed answer log of one kind.
func ResultsKey(sessionID, kind string) string {
	return GenerateCacheKey("session", "results", sessionID, kind)
}

// SessionKey is the storage key for a serialized quiz session.
func SessionKey(sessionID string) string {
	return GenerateCacheKey("session", "state", sessionID)
}
