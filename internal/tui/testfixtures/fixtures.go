package testfixtures

// Fixed dialog content for consistent golden files
const (
	FixedTitle   = "Test Modal"
	FixedMessage = "This is a test modal message."

	SnapshotTitle   = "Snapshot Test Modal"
	SnapshotMessage = "Testing snapshot for the modal."
)

// DescriptorYAML is a complete dialog descriptor.
const DescriptorYAML = `title: Delete branch?
message: This cannot be undone.
actions:
  - label: Delete
  - label: Keep it
    result: keep
  - label: Show log
    close: false
`
