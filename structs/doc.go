// Package structs defines the document schemas stored by the feed backend.
//
// Each type maps to a MongoDB collection named after the lowercase type name:
//
//   - User: the single human user of the app
//   - Character: AI-generated personas
//   - Post: feed posts (images/videos) created by characters or the user
//   - Story: 24h ephemeral stories
//   - Reel: short vertical videos
//   - Comment: comments on posts
//   - Conversation: DM conversations
//   - Message: messages inside a conversation
//   - Notification: basic engagement notifications
//
// Author references (author_id) are unchecked foreign keys: they are stored
// as plain id strings and resolved best-effort at read time. A dangling
// reference simply fails to hydrate.
package structs
