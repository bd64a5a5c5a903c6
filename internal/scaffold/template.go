// Package scaffold writes the boilerplate artifacts for a bootstrapped project.
package scaffold

// Data is the substitution context for rendered templates.
type Data struct {
	Project    string // slugged project name
	AppName    string // prompted display name
	APIURL     string // prompted API base URL
	PM         string // package manager binary, e.g. "npm"
	DevCmd     string // e.g. "npm run dev"
	BuildCmd   string // e.g. "npm run build"
	TestCmd    string // e.g. "npm run test"
	InstallCmd string // e.g. "npm install"
}

// EnvLocalTemplate is the local environment file. Exactly two entries;
// values come from the operator prompts.
const EnvLocalTemplate = `VITE_APP_NAME={{.AppName}}
VITE_API_URL={{.APIURL}}
`

// CIWorkflowTemplate is the GitHub Actions workflow descriptor. The CI
// runner owns its semantics; webforge writes it and moves on.
const CIWorkflowTemplate = `name: ci

on:
  push:
    branches: [main]
  pull_request:

jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-node@v4
        with:
          node-version: 22
      - run: {{.InstallCmd}}
      - run: {{.TestCmd}}
      - run: {{.BuildCmd}}
`

// DockerfileTemplate is the container build descriptor. Presence of a
// container engine is checked but never required.
const DockerfileTemplate = `FROM node:22-alpine AS build
WORKDIR /app
COPY package*.json ./
RUN {{.InstallCmd}}
COPY . .
RUN {{.BuildCmd}}

FROM nginx:alpine
COPY --from=build /app/dist /usr/share/nginx/html
EXPOSE 80
`

// ReadmeTemplate is the project README.
const ReadmeTemplate = `# {{.Project}}

Bootstrapped with webforge.

## Development

` + "```sh" + `
{{.InstallCmd}}
{{.DevCmd}}
` + "```" + `

## Build

` + "```sh" + `
{{.BuildCmd}}
` + "```" + `

## Configuration

Local settings live in ` + "`.env.local`" + ` (not committed):

| Key | Purpose |
| --- | --- |
| ` + "`VITE_APP_NAME`" + ` | Display name of the application |
| ` + "`VITE_API_URL`" + ` | Base URL of the backend API |
`

// GitignoreTemplate is the project .gitignore.
const GitignoreTemplate = `node_modules/
dist/
.env.local
.webforge/
*.log
`

// ManifestTemplate is the webforge.yaml written by `webforge init`.
const ManifestTemplate = `project: {{.Project}}
# package_manager: npm        # uncomment to pin; default is lockfile/PATH detection
min_node_major: 18
scripts:
  dev: dev
  build: build
  test: test
policy:
  audit: advisory
  tests: advisory
`
