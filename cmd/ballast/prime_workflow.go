// Package main provides the entry point for the ballast CLI.
package main

// defaultWorkflowContent is the default session protocol for agent
// onboarding. It can be overridden by a .ballast/PRIME.md file in the
// project root.
const defaultWorkflowContent = `# Session Protocol

## Session start
- [ ] Check for the memory-bank/ directory.
- [ ] If present: read productContext.md, activeContext.md,
      systemPatterns.md, decisionLog.md, progress.md, in that order.
- [ ] Begin every response with the memory bank status line:
      [MEMORY BANK: ACTIVE] or [MEMORY BANK: INACTIVE].
- [ ] If no bank exists, ask the user whether to create one
      (ballast init). If declined, continue INACTIVE and do not ask again.

## During the session
- Append updates with ballast update <file> "<summary>".
  Entries are timestamped [YYYY-MM-DD HH:MM:SS] - Summary and never
  rewrite prior content.
- Record every significant decision in decisionLog.md as it happens.
  Do not batch decisions for the end of the session.
- Only activeContext.md and progress.md permit targeted section
  rewrites (ballast revise); every other file is append-only.

## Wrapping up
- When context usage reaches 33%, finish the current subtask, run UMB,
  and recommend a fresh session.
- On "Update Memory Bank" or "UMB": halt the task, review the chat for
  unrecorded context, and run ballast umb.
`
