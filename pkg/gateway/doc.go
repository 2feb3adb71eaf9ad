// Package gateway implements the Gateway (component E): the two gRPC
// services the scheduler exposes, one per plane. WorkerService translates
// the worker plane's Register/SendStatusUpdates streams into event.Event
// values; ControllerService does the same for the controller plane's
// ScheduleInstance/GetStatusUpdates RPCs. Neither service touches
// scheduler state directly — every RPC becomes an event on a shared
// channel that only pkg/scheduler's Loop drains.
package gateway
