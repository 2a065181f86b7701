package flags

const (
	Home  = "home"
	Trace = "trace"

	DB_Engine = "db.engine"

	Log_Level = "log.level"

	Pending_Enabled = "pending.enabled"

	RPC_Addr = "rpc.addr"

	Worker_Threads = "worker.threads"
)
