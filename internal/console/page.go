package console

// indexPage is the embedded comparison UI. It drives the JSON API directly:
// start a round, show the blind pair, submit the choice, render the ranking.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Response Ranking Console</title>
<style>
  body { font-family: sans-serif; max-width: 960px; margin: 2em auto; padding: 0 1em; }
  textarea { width: 100%; height: 4em; }
  .pair { display: flex; gap: 1em; margin-top: 1em; }
  .candidate { flex: 1; border: 1px solid #ccc; padding: 1em; }
  .candidate pre { white-space: pre-wrap; }
  button { margin-top: 0.5em; padding: 0.4em 1.2em; }
  #ranked li { margin-bottom: 0.5em; }
  .error { color: #b00; }
</style>
</head>
<body>
<h1>Response Ranking Console</h1>
<p>Enter a coding query, pick the better of two anonymous responses, and see
the full reranked ordering.</p>

<textarea id="query" placeholder="e.g. Write a function that checks if a string is a palindrome"></textarea>
<br>
<button onclick="startRound()">Generate</button>
<button onclick="evaluate()">Evaluate alignment</button>
<div id="status" class="error"></div>

<div id="compare" style="display:none">
  <div class="pair">
    <div class="candidate"><h3>Response A</h3><pre id="textA"></pre><button onclick="choose('A')">Prefer A</button></div>
    <div class="candidate"><h3>Response B</h3><pre id="textB"></pre><button onclick="choose('B')">Prefer B</button></div>
  </div>
</div>

<div id="result" style="display:none">
  <h2>Final ranking</h2>
  <ol id="ranked"></ol>
</div>

<div id="evalResult" style="display:none">
  <h2>Alignment</h2>
  <p id="evalBody"></p>
</div>

<script>
let roundID = null;

function setStatus(msg) { document.getElementById('status').textContent = msg || ''; }

async function startRound() {
  setStatus('');
  document.getElementById('result').style.display = 'none';
  const query = document.getElementById('query').value;
  const resp = await fetch('/api/rounds', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({query})
  });
  const body = await resp.json();
  if (!resp.ok) { setStatus(body.error); return; }
  roundID = body.round_id;
  document.getElementById('textA').textContent = body.pair.a.text;
  document.getElementById('textB').textContent = body.pair.b.text;
  document.getElementById('compare').style.display = 'block';
}

async function choose(choice) {
  setStatus('');
  const resp = await fetch('/api/rounds/' + roundID + '/choice', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({choice})
  });
  const body = await resp.json();
  if (!resp.ok) { setStatus(body.error); return; }
  document.getElementById('compare').style.display = 'none';
  const list = document.getElementById('ranked');
  list.innerHTML = '';
  for (const cand of body.ranked) {
    const li = document.createElement('li');
    li.textContent = cand.agent + ' (' + cand.score.toFixed(3) + '): ' + cand.text.slice(0, 200);
    list.appendChild(li);
  }
  document.getElementById('result').style.display = 'block';
}

async function evaluate() {
  setStatus('');
  const resp = await fetch('/api/evaluate', {method: 'POST'});
  const body = await resp.json();
  if (!resp.ok) { setStatus(body.error); return; }
  const el = document.getElementById('evalBody');
  if (body.no_data) {
    el.textContent = 'No feedback data to evaluate yet.';
  } else {
    el.textContent = 'Accuracy ' + body.accuracy.toFixed(1) + '% over ' +
      body.pairs_evaluated + ' pairs; Kendall tau ' + body.kendall_tau.toFixed(3) +
      ', Spearman rho ' + body.spearman_rho.toFixed(3) +
      (body.correlation_meaningful ? '' : ' (correlations not meaningful)');
  }
  document.getElementById('evalResult').style.display = 'block';
}
</script>
</body>
</html>
`
