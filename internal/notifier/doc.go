// Package notifier posts announcements for sessions newly added to the
// conference program.
//
// Notifications fire only for sessions whose IDs were absent from the
// previously generated program document, so repeated runs over an
// unchanged page stay silent. A dry-run implementation prints the posts
// that would be made without talking to any external service.
package notifier
