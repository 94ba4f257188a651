package nested

// Level is unrelated to the enums in the manifest.
type Level int
