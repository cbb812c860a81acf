package server

// webUI is the single-page form served at /. It mirrors the CLI flags:
// a range with prefix/suffix/padding, a free-text parameter block, and a
// manual code list, plus preview and export actions.
const webUI = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Labelsmith</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:#f5f5f5;color:#333;line-height:1.6;padding:20px}
h1{font-size:20px;margin-bottom:16px}
.card{background:#fff;border-radius:8px;padding:16px;margin-bottom:16px;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.card h2{font-size:15px;margin-bottom:10px;color:#444}
.row{display:flex;flex-wrap:wrap;gap:10px;margin-bottom:10px}
label{display:block;font-size:12px;color:#666;margin-bottom:2px}
input,textarea{width:100%;padding:6px 8px;border:1px solid #d1d5db;border-radius:4px;font-size:14px}
textarea{font-family:monospace;min-height:90px}
.field{flex:1;min-width:110px}
button{background:#2563eb;color:#fff;border:none;border-radius:4px;padding:8px 14px;font-size:14px;cursor:pointer;margin-right:8px}
button:hover{background:#1d4ed8}
button.alt{background:#059669}
button.alt:hover{background:#047857}
#msg{margin-top:10px;font-size:13px;color:#b91c1c;white-space:pre-wrap}
#preview{max-width:100%;margin-top:10px;border:1px solid #e5e7eb;border-radius:4px;display:none}
</style>
</head>
<body>
<h1>Labelsmith</h1>

<div class="card">
<h2>Sequence</h2>
<div class="row">
<div class="field"><label>Prefix</label><input id="prefix"></div>
<div class="field"><label>Start</label><input id="start" type="number"></div>
<div class="field"><label>End</label><input id="end" type="number"></div>
<div class="field"><label>Increment</label><input id="increment" type="number" value="1"></div>
<div class="field"><label>Padding</label><input id="padding" type="number" value="0"></div>
<div class="field"><label>Suffix</label><input id="suffix"></div>
</div>
<div class="row">
<div class="field"><label>Parameter block (prefix / suffix / range / increment / padding)</label>
<textarea id="params" placeholder="range: 1-10&#10;padding: 3"></textarea></div>
<div class="field"><label>Manual code list (one per line)</label>
<textarea id="manual"></textarea></div>
</div>
<button onclick="generate()">Generate</button>
<button onclick="preview()">Preview</button>
<div id="msg"></div>
<img id="preview">
</div>

<div class="card">
<h2>Export</h2>
<button onclick="download('/api/export/pdf',{layout:'standard'})">PDF (standard)</button>
<button onclick="download('/api/export/pdf',{layout:'grid'})">PDF (grid)</button>
<button class="alt" onclick="download('/api/export/zip',{})">ZIP (SVG)</button>
</div>

<script>
function intval(id){const v=document.getElementById(id).value.trim();return v===''?null:parseInt(v,10)}
function body(extra){
  return Object.assign({
    prefix:document.getElementById('prefix').value,
    suffix:document.getElementById('suffix').value,
    start:intval('start'),
    end:intval('end'),
    increment:intval('increment')||1,
    padding:intval('padding')||0,
    params:document.getElementById('params').value,
    manual:document.getElementById('manual').value
  },extra||{})
}
function msg(t){document.getElementById('msg').textContent=t||''}
async function post(url,payload){
  const res=await fetch(url,{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify(payload)});
  if(!res.ok){const e=await res.json();throw new Error(e.error||res.statusText)}
  return res
}
async function generate(){
  msg('');
  try{
    const res=await post('/api/generate',body());
    const data=await res.json();
    const manual=document.getElementById('manual');
    manual.value=(manual.value?manual.value+'\n':'')+data.codes.join('\n');
    document.getElementById('params').value='';
  }catch(e){msg(e.message)}
}
async function preview(){
  msg('');
  try{
    const res=await post('/api/preview',body());
    const img=document.getElementById('preview');
    img.src=URL.createObjectURL(await res.blob());
    img.style.display='block';
  }catch(e){msg(e.message)}
}
async function download(url,extra){
  msg('');
  try{
    const res=await post(url,body(extra));
    const name=(res.headers.get('Content-Disposition')||'').split('filename=')[1]||'export';
    const a=document.createElement('a');
    a.href=URL.createObjectURL(await res.blob());
    a.download=name.replace(/"/g,'');
    a.click();
  }catch(e){msg(e.message)}
}
</script>
</body>
</html>`
