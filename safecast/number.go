package safecast

// ISignedInteger covers all signed integer kinds.
type ISignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IUnsignedInteger covers all unsigned integer kinds.
type IUnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IInteger is an alias for the all unsigned and signed integers
type IInteger interface {
	ISignedInteger | IUnsignedInteger
}
