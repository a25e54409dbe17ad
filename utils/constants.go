// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// BrowseCategoryPrefix is the prefix for per-user selected-category keys.
const BrowseCategoryPrefix = "browse:category:"

// BrowseCategoryTTL bounds how long a category handoff survives between screens.
const BrowseCategoryTTL = 30 * time.Minute

// ChatChannelPrefix is the prefix for per-user chat pub/sub channels.
const ChatChannelPrefix = "chat:user:"
