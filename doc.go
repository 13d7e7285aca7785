/*
	Project: CourseCompass - a personalized learning dashboard for a single local student.
	Apps: apps/api (JSON API), apps/cli (terminal client)
*/
package acharya

/*
Course recommendations:
	- session profile -> recommend.Aggregate -> recommend.Requester (one model call) -> recommend.Validate
	- every failure path yields an empty result; Outcome tells which path was taken
	- providers: openai (Responses API, strict json_schema) | dummy (offline, catalog based)

TODO: persist the notification queue in the KV store so toasts survive an API restart.
*/
