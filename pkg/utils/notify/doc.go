// Package notify prints styled user-facing messages to a writer.
//
// Key functionality:
//   - WriteMessage: core styled message printing
//   - Errorf, Warningf, Activityf, Generatef, Successf, Infof: convenience
//     helpers per message type
package notify
