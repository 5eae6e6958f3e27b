package sameday

// SuccessMessage is reported to callers after a same-day task is stored
const SuccessMessage = "Inserted 1 row into same_day_route_task."
