package cli

// Indirection layer to allow stubbing in tests

var (
	fnPredict    = runPredict
	fnWatch      = runWatch
	fnForm       = runForm
	fnHealth     = runHealth
	fnFields     = runFields
	fnStubServer = runStubServer
)
