// Package translation provides Russian to English translation of single
// words through the explanation backends. It includes translation
// caching for batch operations and file persistence for translated words.
package translation
