package lmcp

// SuccessMessage is reported to callers after an LMCP task is stored
const SuccessMessage = "Inserted 1 row into lmcp_task."
