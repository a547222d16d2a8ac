package docstore

// Op is the kind of a buffered write.
type Op int

const (
	// OpCreate inserts a document and fails with ErrAlreadyExists if present.
	OpCreate Op = iota + 1
	// OpSet replaces a document body, creating it if missing.
	OpSet
	// OpMerge applies field updates, creating the document if missing.
	OpMerge
	// OpUpdate applies field updates and fails with ErrNotFound if missing.
	OpUpdate
	// OpDelete removes a document. Deleting a missing document is not an error.
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpSet:
		return "set"
	case OpMerge:
		return "merge"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Write is one document mutation inside a commit. Value is used by create
// and set; Fields by merge and update. Field keys may be dotted paths into
// nested maps, and values may be transforms (Increment, ArrayUnion, ...).
type Write struct {
	Op     Op
	Path   string
	Value  any
	Fields map[string]any
}

func Create(path string, v any) Write {
	return Write{Op: OpCreate, Path: path, Value: v}
}

func Set(path string, v any) Write {
	return Write{Op: OpSet, Path: path, Value: v}
}

func Merge(path string, fields map[string]any) Write {
	return Write{Op: OpMerge, Path: path, Fields: fields}
}

func Update(path string, fields map[string]any) Write {
	return Write{Op: OpUpdate, Path: path, Fields: fields}
}

func Delete(path string) Write {
	return Write{Op: OpDelete, Path: path}
}
