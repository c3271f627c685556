package util

// DoOnErrOrPanic calls f if the value of err is not nil or if the goroutine is
// panicking. If there is a panic, it is rethrown.
//
// DoOnErrOrPanic should be called as a defer function to properly handle panics:
//
//	defer DoOnErrOrPanic(&returnErr, func() {
//		file.Close()
//	})
//
// err must be a pointer (normally to a named return error): a plain value
// would be captured at defer creation time, before the function body had a
// chance to set it.
func DoOnErrOrPanic(err *error, f func()) {
	p := recover()
	if *err != nil || p != nil {
		f()
	}
	if p != nil {
		panic(p)
	}
}
