package roller

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/dicetray/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/dicetray/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/dicetray/internal/dice/mocks"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/render/board"
	"github.com/KirkDiggler/dicetray/internal/render/face"
	rollRepo "github.com/KirkDiggler/dicetray/internal/repositories/roll"
	rollMocks "github.com/KirkDiggler/dicetray/internal/repositories/roll/mocks"
	tableRepo "github.com/KirkDiggler/dicetray/internal/repositories/table"
	tableMocks "github.com/KirkDiggler/dicetray/internal/repositories/table/mocks"
)

type RollerServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockTableRepo  *tableMocks.MockRepository
	mockRollRepo   *rollMocks.MockRepository
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	renderer       *face.Renderer
	service        Service
	ctx            context.Context

	// Test data
	testTime    time.Time
	testTableID string
	testSetID   string

	// Reusable test fixtures
	expectedSet *models.DiceSet
}

func (s *RollerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTableRepo = tableMocks.NewMockRepository(s.mockCtrl)
	s.mockRollRepo = rollMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	renderer, err := face.NewRenderer()
	s.Require().NoError(err)
	s.renderer = renderer

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testTableID = "test-table-id"
	s.testSetID = "test-set-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.expectedSet = &models.DiceSet{
		ID:        s.testSetID,
		TableID:   s.testTableID,
		Position:  0,
		Name:      "Attack",
		DiceCount: 2,
		DiceSides: 6,
		DiceColor: "white",
		MarkColor: "black",
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	svc, err := New(&Config{
		Supersample:   1,
		TableRepo:     s.mockTableRepo,
		RollRepo:      s.mockRollRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Renderer:      s.renderer,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RollerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRollerServiceSuite(t *testing.T) {
	suite.Run(t, new(RollerServiceTestSuite))
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func (s *RollerServiceTestSuite) TestNewValidation() {
	full := func() *Config {
		return &Config{
			TableRepo:     s.mockTableRepo,
			RollRepo:      s.mockRollRepo,
			DiceRoller:    s.mockDiceRoller,
			Clock:         s.mockClock,
			UUIDGenerator: s.mockUUID,
			Renderer:      s.renderer,
		}
	}

	testCases := []struct {
		name     string
		cfg      func() *Config
		expected error
	}{
		{name: "nil config", cfg: func() *Config { return nil }, expected: ErrNilConfig},
		{name: "nil table repo", cfg: func() *Config { c := full(); c.TableRepo = nil; return c }, expected: ErrNilTableRepo},
		{name: "nil roll repo", cfg: func() *Config { c := full(); c.RollRepo = nil; return c }, expected: ErrNilRollRepo},
		{name: "nil dice roller", cfg: func() *Config { c := full(); c.DiceRoller = nil; return c }, expected: ErrNilDiceRoller},
		{name: "nil clock", cfg: func() *Config { c := full(); c.Clock = nil; return c }, expected: ErrNilClock},
		{name: "nil uuid", cfg: func() *Config { c := full(); c.UUIDGenerator = nil; return c }, expected: ErrNilUUIDGenerator},
		{name: "nil renderer", cfg: func() *Config { c := full(); c.Renderer = nil; return c }, expected: ErrNilRenderer},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := New(tc.cfg())
			s.ErrorIs(err, tc.expected)
			s.Nil(svc)
		})
	}
}

func (s *RollerServiceTestSuite) TestConfigureTableNewTable() {
	s.mockTableRepo.EXPECT().
		GetTable(s.ctx, &tableRepo.GetTableInput{TableID: s.testTableID}).
		Return(nil, tableRepo.ErrTableNotFound)
	s.mockUUID.EXPECT().NewUUID().Return("set-a").Times(1)
	s.mockUUID.EXPECT().NewUUID().Return("set-b").Times(1)
	s.mockTableRepo.EXPECT().
		ReplaceSets(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tableRepo.ReplaceSetsInput) (*tableRepo.ReplaceSetsOutput, error) {
			s.Equal([]string{"set-a", "set-b"}, input.Table.SetIDs)
			s.Len(input.Sets, 2)
			return &tableRepo.ReplaceSetsOutput{}, nil
		})

	out, err := s.service.ConfigureTable(s.ctx, &ConfigureTableInput{
		TableID:  s.testTableID,
		SetCount: 2,
		Locale:   "de-DE",
	})

	s.Require().NoError(err)
	s.Equal(s.testTableID, out.Table.ID)
	s.Equal("de-DE", out.Table.Locale)
	s.Equal(s.testTime, out.Table.CreatedAt)
	s.Require().Len(out.Sets, 2)
	s.Equal("Set 1", out.Sets[0].Name)
	s.Equal("Set 2", out.Sets[1].Name)
	s.Equal(1, out.Sets[1].Position)
	s.Equal(models.DefaultDiceCount, out.Sets[0].DiceCount)
	s.Equal(models.DefaultDiceSides, out.Sets[0].DiceSides)
	s.Equal(models.DefaultDiceColor, out.Sets[0].DiceColor)
	s.Equal(models.DefaultMarkColor, out.Sets[0].MarkColor)
}

func (s *RollerServiceTestSuite) TestConfigureTableReplacesOldSets() {
	created := s.testTime.Add(-time.Hour)
	existing := &models.Table{
		ID:        s.testTableID,
		SetIDs:    []string{"old-1", "old-2"},
		Locale:    "de-DE",
		CreatedAt: created,
	}

	s.mockTableRepo.EXPECT().GetTable(s.ctx, gomock.Any()).Return(existing, nil)
	s.mockUUID.EXPECT().NewUUID().Return("set-a")
	s.mockTableRepo.EXPECT().
		ReplaceSets(s.ctx, gomock.Any()).
		Return(&tableRepo.ReplaceSetsOutput{RemovedSetIDs: []string{"old-1", "old-2"}}, nil)
	s.mockRollRepo.EXPECT().
		DeleteRollSets(s.ctx, &rollRepo.DeleteRollSetsInput{SetIDs: []string{"old-1", "old-2"}}).
		Return(nil)

	out, err := s.service.ConfigureTable(s.ctx, &ConfigureTableInput{
		TableID:  s.testTableID,
		SetCount: 1,
	})

	s.Require().NoError(err)
	s.Equal(created, out.Table.CreatedAt)
	s.Equal(s.testTime, out.Table.UpdatedAt)
	s.Equal("de-DE", out.Table.Locale)
	s.Equal([]string{"set-a"}, out.Table.SetIDs)
}

func (s *RollerServiceTestSuite) TestConfigureTableValidation() {
	_, err := s.service.ConfigureTable(s.ctx, &ConfigureTableInput{SetCount: 1})
	s.ErrorIs(err, ErrMissingTableID)

	_, err = s.service.ConfigureTable(s.ctx, &ConfigureTableInput{TableID: s.testTableID, SetCount: 0})
	s.ErrorIs(err, ErrInvalidSetCount)

	_, err = s.service.ConfigureTable(s.ctx, &ConfigureTableInput{TableID: s.testTableID, SetCount: 13})
	s.ErrorIs(err, ErrInvalidSetCount)
}

func (s *RollerServiceTestSuite) TestConfigureTableRepoError() {
	s.mockTableRepo.EXPECT().GetTable(s.ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := s.service.ConfigureTable(s.ctx, &ConfigureTableInput{TableID: s.testTableID, SetCount: 1})
	s.Error(err)
}

func (s *RollerServiceTestSuite) TestUpdateSet() {
	set := *s.expectedSet
	s.mockTableRepo.EXPECT().
		GetSetByPosition(s.ctx, &tableRepo.GetSetByPositionInput{TableID: s.testTableID, Position: 0}).
		Return(&set, nil)
	s.mockTableRepo.EXPECT().
		SaveSet(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tableRepo.SaveSetInput) error {
			s.Equal("Damage", input.Set.Name)
			return nil
		})
	s.mockTableRepo.EXPECT().
		GetTable(s.ctx, &tableRepo.GetTableInput{TableID: s.testTableID}).
		Return(&models.Table{ID: s.testTableID, SetIDs: []string{s.testSetID}}, nil)
	s.mockTableRepo.EXPECT().
		SaveTable(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tableRepo.SaveTableInput) error {
			s.Equal(s.testTableID, input.Table.ID)
			s.Equal(s.testTime, input.Table.UpdatedAt)
			return nil
		})

	out, err := s.service.UpdateSet(s.ctx, &UpdateSetInput{
		TableID:   s.testTableID,
		Position:  0,
		Name:      strPtr("  Damage "),
		DiceCount: intPtr(4),
		DiceSides: intPtr(20),
		DiceColor: strPtr("#ff8800"),
	})

	s.Require().NoError(err)
	s.Equal("Damage", out.Set.Name)
	s.Equal(4, out.Set.DiceCount)
	s.Equal(20, out.Set.DiceSides)
	s.Equal("#ff8800", out.Set.DiceColor)
	s.Equal("black", out.Set.MarkColor)
}

func (s *RollerServiceTestSuite) TestUpdateSetValidation() {
	testCases := []struct {
		name     string
		input    *UpdateSetInput
		expected error
	}{
		{
			name:     "missing table",
			input:    &UpdateSetInput{},
			expected: ErrMissingTableID,
		},
		{
			name:     "too many dice",
			input:    &UpdateSetInput{TableID: s.testTableID, DiceCount: intPtr(13)},
			expected: ErrInvalidDiceCount,
		},
		{
			name:     "no dice",
			input:    &UpdateSetInput{TableID: s.testTableID, DiceCount: intPtr(0)},
			expected: ErrInvalidDiceCount,
		},
		{
			name:     "one side",
			input:    &UpdateSetInput{TableID: s.testTableID, DiceSides: intPtr(1)},
			expected: ErrInvalidSides,
		},
		{
			name:     "too many sides",
			input:    &UpdateSetInput{TableID: s.testTableID, DiceSides: intPtr(51)},
			expected: ErrInvalidSides,
		},
		{
			name:     "bad color",
			input:    &UpdateSetInput{TableID: s.testTableID, MarkColor: strPtr("#zzzzzz")},
			expected: ErrInvalidColor,
		},
		{
			name:     "negative position",
			input:    &UpdateSetInput{TableID: s.testTableID, Position: -1},
			expected: ErrSetNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.service.UpdateSet(s.ctx, tc.input)
			s.ErrorIs(err, tc.expected)
			s.Nil(out)
		})
	}
}

func (s *RollerServiceTestSuite) TestUpdateSetNotFound() {
	s.mockTableRepo.EXPECT().GetSetByPosition(s.ctx, gomock.Any()).Return(nil, tableRepo.ErrSetNotFound)

	_, err := s.service.UpdateSet(s.ctx, &UpdateSetInput{TableID: s.testTableID, Position: 3})
	s.ErrorIs(err, ErrSetNotFound)
}

func (s *RollerServiceTestSuite) TestUpdateSetOrphanedSet() {
	set := *s.expectedSet
	s.mockTableRepo.EXPECT().GetSetByPosition(s.ctx, gomock.Any()).Return(&set, nil)
	s.mockTableRepo.EXPECT().SaveSet(s.ctx, gomock.Any()).Return(nil)
	s.mockTableRepo.EXPECT().GetTable(s.ctx, gomock.Any()).Return(nil, tableRepo.ErrTableNotFound)

	_, err := s.service.UpdateSet(s.ctx, &UpdateSetInput{TableID: s.testTableID, Name: strPtr("Damage")})
	s.ErrorIs(err, ErrTableNotFound)
}

func (s *RollerServiceTestSuite) TestDeleteTable() {
	s.mockTableRepo.EXPECT().
		DeleteTable(s.ctx, &tableRepo.DeleteTableInput{TableID: s.testTableID}).
		Return(&tableRepo.DeleteTableOutput{RemovedSetIDs: []string{s.testSetID, "other-set-id"}}, nil)
	s.mockRollRepo.EXPECT().
		DeleteRollSets(s.ctx, &rollRepo.DeleteRollSetsInput{SetIDs: []string{s.testSetID, "other-set-id"}}).
		Return(nil)

	out, err := s.service.DeleteTable(s.ctx, &DeleteTableInput{TableID: s.testTableID})

	s.Require().NoError(err)
	s.Equal([]string{s.testSetID, "other-set-id"}, out.RemovedSetIDs)
}

func (s *RollerServiceTestSuite) TestDeleteTableWithoutSets() {
	s.mockTableRepo.EXPECT().
		DeleteTable(s.ctx, gomock.Any()).
		Return(&tableRepo.DeleteTableOutput{}, nil)

	out, err := s.service.DeleteTable(s.ctx, &DeleteTableInput{TableID: s.testTableID})

	s.Require().NoError(err)
	s.Empty(out.RemovedSetIDs)
}

func (s *RollerServiceTestSuite) TestDeleteTableNotFound() {
	s.mockTableRepo.EXPECT().DeleteTable(s.ctx, gomock.Any()).Return(nil, tableRepo.ErrTableNotFound)

	_, err := s.service.DeleteTable(s.ctx, &DeleteTableInput{TableID: s.testTableID})
	s.ErrorIs(err, ErrTableNotFound)

	_, err = s.service.DeleteTable(s.ctx, &DeleteTableInput{})
	s.ErrorIs(err, ErrMissingTableID)
}

func (s *RollerServiceTestSuite) TestDeleteTableRollCleanupError() {
	s.mockTableRepo.EXPECT().
		DeleteTable(s.ctx, gomock.Any()).
		Return(&tableRepo.DeleteTableOutput{RemovedSetIDs: []string{s.testSetID}}, nil)
	s.mockRollRepo.EXPECT().DeleteRollSets(s.ctx, gomock.Any()).Return(errors.New("connection refused"))

	out, err := s.service.DeleteTable(s.ctx, &DeleteTableInput{TableID: s.testTableID})
	s.Error(err)
	s.Nil(out)
}

func (s *RollerServiceTestSuite) TestGetTable() {
	table := &models.Table{ID: s.testTableID, SetIDs: []string{s.testSetID}}
	s.mockTableRepo.EXPECT().GetTable(s.ctx, &tableRepo.GetTableInput{TableID: s.testTableID}).Return(table, nil)
	s.mockTableRepo.EXPECT().
		GetSetsByTable(s.ctx, &tableRepo.GetSetsByTableInput{TableID: s.testTableID}).
		Return(&tableRepo.GetSetsByTableOutput{Sets: []*models.DiceSet{s.expectedSet}}, nil)

	out, err := s.service.GetTable(s.ctx, &GetTableInput{TableID: s.testTableID})

	s.Require().NoError(err)
	s.Equal(table, out.Table)
	s.Equal([]*models.DiceSet{s.expectedSet}, out.Sets)
}

func (s *RollerServiceTestSuite) TestGetTableNotFound() {
	s.mockTableRepo.EXPECT().GetTable(s.ctx, gomock.Any()).Return(nil, tableRepo.ErrTableNotFound)

	_, err := s.service.GetTable(s.ctx, &GetTableInput{TableID: s.testTableID})
	s.ErrorIs(err, ErrTableNotFound)
}

func (s *RollerServiceTestSuite) TestRollSet() {
	s.mockTableRepo.EXPECT().GetSetByPosition(s.ctx, gomock.Any()).Return(s.expectedSet, nil)
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(6).Return(3),
		s.mockDiceRoller.EXPECT().Roll(6).Return(5),
	)
	s.mockUUID.EXPECT().NewUUID().Return("roll-id")
	s.mockRollRepo.EXPECT().
		SaveRollSet(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *rollRepo.SaveRollSetInput) error {
			s.Equal(s.testSetID, input.RollSet.SetID)
			return nil
		})

	out, err := s.service.RollSet(s.ctx, &RollSetInput{TableID: s.testTableID, Position: 0})

	s.Require().NoError(err)
	s.Equal("roll-id", out.RollSet.ID)
	s.Equal([]int{3, 5}, out.RollSet.Values())
	s.Equal(8, out.Total)
	s.True(out.ShowTotal)
	s.Equal(s.testTime, out.RollSet.RolledAt)
}

func (s *RollerServiceTestSuite) TestRollSetSaveError() {
	s.mockTableRepo.EXPECT().GetSetByPosition(s.ctx, gomock.Any()).Return(s.expectedSet, nil)
	s.mockDiceRoller.EXPECT().Roll(6).Return(1).Times(2)
	s.mockUUID.EXPECT().NewUUID().Return("roll-id")
	s.mockRollRepo.EXPECT().SaveRollSet(s.ctx, gomock.Any()).Return(errors.New("write failed"))

	_, err := s.service.RollSet(s.ctx, &RollSetInput{TableID: s.testTableID})
	s.Error(err)
}

func (s *RollerServiceTestSuite) TestRollDiceSingleDieHidesTotal() {
	s.mockDiceRoller.EXPECT().Roll(20).Return(17)
	s.mockUUID.EXPECT().NewUUID().Return("roll-id")

	out, err := s.service.RollDice(s.ctx, &RollDiceInput{Sides: 20, Count: 1})

	s.Require().NoError(err)
	s.Equal([]int{17}, out.RollSet.Values())
	s.Equal(17, out.Total)
	s.False(out.ShowTotal)
	s.Empty(out.RollSet.SetID)
}

func (s *RollerServiceTestSuite) TestRollDiceValidation() {
	_, err := s.service.RollDice(s.ctx, &RollDiceInput{Sides: 1, Count: 1})
	s.ErrorIs(err, ErrInvalidSides)

	_, err = s.service.RollDice(s.ctx, &RollDiceInput{Sides: 6, Count: 13})
	s.ErrorIs(err, ErrInvalidDiceCount)
}

func (s *RollerServiceTestSuite) TestRenderRollSetPNG() {
	rs := models.NewRollSet("roll-id", "", 6, []int{1, 2, 3}, s.testTime)

	out, err := s.service.RenderRollSet(s.ctx, &RenderRollSetInput{
		RollSet:         rs,
		ContainerWidth:  600,
		ContainerHeight: 400,
	})

	s.Require().NoError(err)
	s.Equal("image/png", out.ContentType)
	s.Equal(1, out.Geometry.Rows)
	s.Equal(3, out.Geometry.Columns)
	s.InDelta(180.0, out.Geometry.DieSize, 1e-9)

	cfg, err := png.DecodeConfig(bytes.NewReader(out.Image))
	s.Require().NoError(err)
	s.Equal(540, cfg.Width)
	s.Equal(180, cfg.Height)
}

func (s *RollerServiceTestSuite) TestRenderRollSetWebP() {
	rs := models.NewRollSet("roll-id", "", 12, []int{11}, s.testTime)

	out, err := s.service.RenderRollSet(s.ctx, &RenderRollSetInput{
		RollSet:         rs,
		DiceColor:       "black",
		MarkColor:       "white",
		ContainerWidth:  200,
		ContainerHeight: 200,
		Format:          "webp",
	})

	s.Require().NoError(err)
	s.Equal("image/webp", out.ContentType)
	s.Require().Greater(len(out.Image), 12)
	s.Equal("RIFF", string(out.Image[:4]))
	s.Equal("WEBP", string(out.Image[8:12]))
}

func (s *RollerServiceTestSuite) TestRenderRollSetValidation() {
	rs := models.NewRollSet("roll-id", "", 6, []int{1}, s.testTime)

	_, err := s.service.RenderRollSet(s.ctx, &RenderRollSetInput{ContainerWidth: 10, ContainerHeight: 10})
	s.ErrorIs(err, ErrNilRollSet)

	_, err = s.service.RenderRollSet(s.ctx, &RenderRollSetInput{RollSet: rs, ContainerWidth: 0, ContainerHeight: 10})
	s.ErrorIs(err, ErrInvalidContainer)

	_, err = s.service.RenderRollSet(s.ctx, &RenderRollSetInput{RollSet: rs, ContainerWidth: 2_000_000_000, ContainerHeight: 2_000_000_000})
	s.ErrorIs(err, ErrInvalidContainer)

	_, err = s.service.RenderRollSet(s.ctx, &RenderRollSetInput{RollSet: rs, ContainerWidth: MaxContainerSize + 1, ContainerHeight: 10})
	s.ErrorIs(err, ErrInvalidContainer)

	_, err = s.service.RenderRollSet(s.ctx, &RenderRollSetInput{RollSet: rs, ContainerWidth: 10, ContainerHeight: MaxContainerSize + 1})
	s.ErrorIs(err, ErrInvalidContainer)

	bad := &models.RollSet{ID: "roll-id", Faces: []models.DieFace{{Value: 9, Sides: 6}}}
	_, err = s.service.RenderRollSet(s.ctx, &RenderRollSetInput{RollSet: bad, ContainerWidth: 10, ContainerHeight: 10})
	s.ErrorIs(err, ErrInvalidRollSet)

	_, err = s.service.RenderRollSet(s.ctx, &RenderRollSetInput{RollSet: rs, ContainerWidth: 10, ContainerHeight: 10, Format: "gif"})
	s.ErrorIs(err, ErrInvalidFormat)

	_, err = s.service.RenderRollSet(s.ctx, &RenderRollSetInput{RollSet: rs, ContainerWidth: 10, ContainerHeight: 10, DiceColor: "plaid"})
	s.ErrorIs(err, ErrInvalidColor)
}

func (s *RollerServiceTestSuite) TestRenderRollSetLargestContainer() {
	rs := models.NewRollSet("roll-id", "", 6, []int{4}, s.testTime)

	out, err := s.service.RenderRollSet(s.ctx, &RenderRollSetInput{
		RollSet:         rs,
		ContainerWidth:  MaxContainerSize,
		ContainerHeight: 100,
	})

	s.Require().NoError(err)
	s.InDelta(50.0, out.Geometry.DieSize, 1e-9)
}

func (s *RollerServiceTestSuite) TestNewCapsSupersample() {
	svc, err := New(&Config{
		Supersample:   64,
		TableRepo:     s.mockTableRepo,
		RollRepo:      s.mockRollRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Renderer:      s.renderer,
	})

	s.Require().NoError(err)
	s.Equal(board.MaxSupersample, svc.supersample)
}

func (s *RollerServiceTestSuite) TestRenderLatest() {
	rs := models.NewRollSet("roll-id", s.testSetID, 6, []int{6, 6}, s.testTime)
	s.mockTableRepo.EXPECT().GetSetByPosition(s.ctx, gomock.Any()).Return(s.expectedSet, nil)
	s.mockRollRepo.EXPECT().
		GetLatestRollSet(s.ctx, &rollRepo.GetLatestRollSetInput{SetID: s.testSetID}).
		Return(rs, nil)

	out, err := s.service.RenderLatest(s.ctx, &RenderLatestInput{
		TableID:         s.testTableID,
		ContainerWidth:  300,
		ContainerHeight: 300,
	})

	s.Require().NoError(err)
	s.Equal(rs, out.RollSet)
	s.Equal(s.expectedSet, out.Set)
	s.Equal("image/png", out.ContentType)
	s.NotEmpty(out.Image)
}

func (s *RollerServiceTestSuite) TestRenderLatestNoRoll() {
	s.mockTableRepo.EXPECT().GetSetByPosition(s.ctx, gomock.Any()).Return(s.expectedSet, nil)
	s.mockRollRepo.EXPECT().GetLatestRollSet(s.ctx, gomock.Any()).Return(nil, rollRepo.ErrRollSetNotFound)

	_, err := s.service.RenderLatest(s.ctx, &RenderLatestInput{
		TableID:         s.testTableID,
		ContainerWidth:  300,
		ContainerHeight: 300,
	})
	s.ErrorIs(err, ErrNoRollYet)
}

func (s *RollerServiceTestSuite) TestRenderFace() {
	out, err := s.service.RenderFace(s.ctx, &RenderFaceInput{Value: 5, Sides: 6, Size: 64})

	s.Require().NoError(err)

	cfg, err := png.DecodeConfig(bytes.NewReader(out.Image))
	s.Require().NoError(err)
	s.Equal(64, cfg.Width)
	s.Equal(64, cfg.Height)
}

func (s *RollerServiceTestSuite) TestRenderFaceValidation() {
	_, err := s.service.RenderFace(s.ctx, &RenderFaceInput{Value: 7, Sides: 6, Size: 64})
	s.ErrorIs(err, ErrInvalidFaceValue)

	_, err = s.service.RenderFace(s.ctx, &RenderFaceInput{Value: 0, Sides: 6, Size: 64})
	s.ErrorIs(err, ErrInvalidFaceValue)

	_, err = s.service.RenderFace(s.ctx, &RenderFaceInput{Value: 1, Sides: 60, Size: 64})
	s.ErrorIs(err, ErrInvalidSides)

	_, err = s.service.RenderFace(s.ctx, &RenderFaceInput{Value: 1, Sides: 6, Size: MaxFaceSize + 1})
	s.ErrorIs(err, ErrInvalidSize)
}
