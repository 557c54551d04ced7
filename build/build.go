package build

// ตั้งค่าตอน build ด้วย -ldflags "-X go-cartmaster/build.Version=... -X go-cartmaster/build.Time=..."
var (
	Version = "local-dev"
	Time    = "n/a"
)
