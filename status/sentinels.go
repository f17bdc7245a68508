package status

// Sentinel statuses for errors.Is-style comparisons, one per built-in error
// code (VA_END has none; the OK sentinel is Ok, in status.go).
var (
	ErrOOM                = New(OOM)
	ErrNotImplemented      = New(NotImplemented)
	ErrIncompatibleType    = New(IncompatibleType)
	ErrNoInterface         = New(NoInterface)
	ErrEOF                 = New(EOF)
	ErrGone                = New(Gone)
	ErrPopFromEmptyList    = New(PopFromEmptyList)
	ErrKeyNotFound         = New(KeyNotFound)
	ErrFileAlreadyOpened   = New(FileAlreadyOpened)
	ErrCannotSetFilename   = New(CannotSetFilename)
	ErrFDAlreadySet        = New(FDAlreadySet)
	ErrPushbackFailed      = New(PushbackFailed)
)
