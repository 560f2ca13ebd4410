// Shell completion for richtextctl. kong-completion generates the
// completion script itself from the CLI struct (see the Completion field
// in root.go); this file holds no code of its own.
package main
