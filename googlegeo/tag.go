package googlegeo

// Tag constrains the closed catalog types whose values carry a fixed wire
// label. Every catalog type in this package reports its own label through the
// unexported tag method, so the set of implementations cannot grow outside
// the package and no reflection is needed to recover a value's label.
type Tag interface {
	comparable
	tag() string
}
