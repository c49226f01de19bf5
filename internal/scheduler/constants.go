package scheduler

// LogMsgJobNotQueued is logged when a scheduled tick cannot enqueue its job
const LogMsgJobNotQueued = "Scheduled job not queued"
