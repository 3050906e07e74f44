// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

const sudoFields = `
  id
  claims { name version algorithm keyId base64Data }
  objects { name version algorithm keyId bucket region key }
  metadata { name value }
  version
  createdAtEpochMs
  updatedAtEpochMs
  owner`

const (
	createSudoMutation = `mutation CreateSudo($input: CreateSudoInput!) {
  createSudo(input: $input) {` + sudoFields + `
  }
}`

	getSudoQuery = `query GetSudo($id: ID!) {
  getSudo(id: $id) {` + sudoFields + `
  }
}`

	listSudosQuery = `query ListSudos($limit: Int, $nextToken: String) {
  listSudos(limit: $limit, nextToken: $nextToken) {
    items {` + sudoFields + `
    }
    nextToken
  }
}`

	updateSudoMutation = `mutation UpdateSudo($input: UpdateSudoInput!) {
  updateSudo(input: $input) {` + sudoFields + `
  }
}`

	deleteSudoMutation = `mutation DeleteSudo($input: DeleteSudoInput!) {
  deleteSudo(input: $input) {` + sudoFields + `
  }
}`

	onCreateSudoSubscription = `subscription OnCreateSudo($owner: String!) {
  onCreateSudo(owner: $owner) {` + sudoFields + `
  }
}`

	onUpdateSudoSubscription = `subscription OnUpdateSudo($owner: String!) {
  onUpdateSudo(owner: $owner) {` + sudoFields + `
  }
}`

	onDeleteSudoSubscription = `subscription OnDeleteSudo($owner: String!) {
  onDeleteSudo(owner: $owner) {` + sudoFields + `
  }
}`
)
