package voiceindex

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type IndexTestSuite struct {
	suite.Suite
	index *Index
}

func (s *IndexTestSuite) SetupTest() {
	s.index = New()
}

func TestIndexTestSuite(t *testing.T) {
	suite.Run(t, new(IndexTestSuite))
}

func (s *IndexTestSuite) TestNewIndexIsEmpty() {
	s.Empty(s.index.Members("anything"))
}

func (s *IndexTestSuite) TestJoinAndMembers() {
	s.index.Join("ch-1", "alice")
	s.index.Join("ch-1", "bob")
	s.index.Join("ch-2", "carol")

	s.ElementsMatch([]string{"alice", "bob"}, s.index.Members("ch-1"))
	s.ElementsMatch([]string{"carol"}, s.index.Members("ch-2"))
}

func (s *IndexTestSuite) TestDuplicateJoinsCollapse() {
	s.index.Join("ch-1", "alice")
	s.index.Join("ch-1", "alice")

	s.Len(s.index.Members("ch-1"), 1)
}

func (s *IndexTestSuite) TestLeave() {
	s.index.Join("ch-1", "alice")
	s.index.Join("ch-1", "bob")

	s.index.Leave("ch-1", "alice")

	s.ElementsMatch([]string{"bob"}, s.index.Members("ch-1"))
}

func (s *IndexTestSuite) TestLeaveUnknownMemberIsNoOp() {
	s.index.Join("ch-1", "alice")

	s.index.Leave("ch-1", "bob")
	s.index.Leave("ch-2", "alice")

	s.ElementsMatch([]string{"alice"}, s.index.Members("ch-1"))
}

func (s *IndexTestSuite) TestMove() {
	s.index.Join("ch-1", "alice")

	s.index.Move("alice", "ch-1", "ch-2")

	s.Empty(s.index.Members("ch-1"))
	s.ElementsMatch([]string{"alice"}, s.index.Members("ch-2"))
}

func (s *IndexTestSuite) TestMoveWithoutOrigin() {
	s.index.Move("alice", "", "ch-2")

	s.ElementsMatch([]string{"alice"}, s.index.Members("ch-2"))
}

func (s *IndexTestSuite) TestForget() {
	s.index.Join("ch-1", "alice")

	s.index.Forget("ch-1")

	s.Empty(s.index.Members("ch-1"))
}

func (s *IndexTestSuite) TestMembersReturnsCopy() {
	s.index.Join("ch-1", "alice")
	s.index.Join("ch-1", "bob")

	members := s.index.Members("ch-1")
	members[0] = "mallory"

	s.ElementsMatch([]string{"alice", "bob"}, s.index.Members("ch-1"))
}
