/*
Package ports defines the driven ports (interfaces) for the blotter journal.

These interfaces decouple the core from external implementations, allowing the
journal to work with various archive backends and externally defined commands.

# Key Interfaces

  - Command: The open-set capability interface for action kinds defined outside this module.
  - ArchiveStore: Responsible for persisting frozen audit trails (snapshot layering, not live state).
*/
package ports
